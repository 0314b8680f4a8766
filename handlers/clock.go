package handlers

import "time"

// timeNow is swapped out in tests to pin the clock. All schedule/date
// utilities take the instant explicitly; this is the single place handlers
// read it from.
var timeNow = time.Now
