// Package config defines the loader interface through which the app reads
// its declarative inputs (index and template files), and the optional
// configuration file that supplies default paths and output settings.
//
// Concrete loaders, such as the HCL one, live in their own packages.
package config
