package ledger

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control "today" in assertions.
var timeNow = time.Now
