package data

import "golang.org/x/sync/errgroup"

// Gate runs an existence check and the primary fetch concurrently and waits
// for both. A failed check always wins over a failed fetch, since a missing
// parent makes the fetch result meaningless.
func Gate(check, fetch func() error) error {
	var checkErr, fetchErr error

	var g errgroup.Group
	g.Go(func() error {
		checkErr = check()
		return checkErr
	})
	g.Go(func() error {
		fetchErr = fetch()
		return fetchErr
	})
	// Each task keeps its own error, so Wait's first error is not needed.
	_ = g.Wait()

	if checkErr != nil {
		return checkErr
	}
	return fetchErr
}
