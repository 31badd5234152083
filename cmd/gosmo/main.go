// Command gosmo is a small demonstration binary that drives the gosmo
// engine against a toy calculator model. It is not the specified test-writer
// front end: real users import the engine, step, history, endcondition,
// errorstrategy, and selection packages directly, the way one imports
// pyosmo as a library.
package main

func main() {
	Execute()
}
