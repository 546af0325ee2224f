package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/regbuild/internal/app"
	"github.com/vk/regbuild/internal/hcl"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Path returns name resolved inside the harness directory.
func (r *HarnessResult) Path(name string) string {
	return filepath.Join(r.Dir, name)
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a fresh directory, resolves
// every relative path of cfg against it, and runs the app once.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory and write all fixtures into it.
	tmpDir := t.TempDir()
	WriteFiles(t, tmpDir, files)

	// 2. Point the config at the temporary directory.
	for _, p := range []*string{&cfg.ExistingPath, &cfg.OutputPath, &cfg.FullOutputPath, &cfg.IndexPath, &cfg.TemplatesPath} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(tmpDir, *p)
		}
	}
	cfg.LogLevel = "debug"
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err, "invalid harness config")

	// 3. Run the app with captured output.
	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}
	testApp := app.NewApp(outBuffer, logBuffer, validated, hcl.NewLoader())
	runErr := testApp.Run(ctx)

	if os.Getenv("REGBUILD_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Dir:       tmpDir,
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
