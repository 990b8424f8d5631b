package dates

import "time"

// now is the clock read by every "now"-relative function in this package.
// Tests pin it through SetNow in export_test.go.
var now = time.Now
