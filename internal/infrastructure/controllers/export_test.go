//go:build unit

package controllers

// SetExit replaces the process exit of a BumpController for testing.
func (it *BumpController) SetExit(exit func(code int)) {
	it.exit = exit
}

// SetExit replaces the process exit of a ManagersController for testing.
func (it *ManagersController) SetExit(exit func(code int)) {
	it.exit = exit
}
