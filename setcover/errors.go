package setcover

import "errors"

// ErrInfeasible indicates the target bitmap is not coverable by the union
// of all supplied rows. It is not returned as a process-abort error:
// callers should treat it as "no solution" and consult the wrapping
// *InfeasibleError for the uncovered columns.
var ErrInfeasible = errors.New("setcover: target is infeasible")
