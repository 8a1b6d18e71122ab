package dashboard

import "errors"

var ErrBranchNotFound = errors.New("branch not found")

var ErrNotSubscribed = errors.New("connection is not subscribed")
