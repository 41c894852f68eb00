// main.go
//
// Entry point. All CLI handling lives in the Cobra root command under cmd/.

package main

import (
	"github.com/JayArr001/warehouse-sim/cmd"
)

func main() {
	cmd.Execute()
}
