package testutil

import (
	"encoding/json"
	"fmt"
)

// Record returns a minimal registry record for name with every required
// field present.
func Record(name, category string, docID int) string {
	n, _ := json.Marshal(name)
	c, _ := json.Marshal(category)
	return fmt.Sprintf(
		`{"name":%s,"description":"hand written","category":%s,"docId":%d,`+
			`"parameters":[{"name":"ts_code","type":"str","required":true,"description":"code"}],`+
			`"outputFields":[{"name":"close","type":"float","defaultShow":true,"description":"close"}]}`,
		n, c, docID,
	)
}
