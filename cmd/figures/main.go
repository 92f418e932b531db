package main

import (
	"flag"
	"log"
	"os"

	"github.com/daystram/figures/position"
)

const (
	exitOK = iota
	exitErr
)

var (
	target  = flag.String("target", "5,3", "target square, either notation (e3) or column,row (5,3)")
	draw    = flag.Bool("draw", false, "draw the reachable squares of every figure")
	noColor = flag.Bool("nocolor", false, "disable colored output")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	sq := *target
	if len(args) > 0 {
		sq = args[0]
	}
	to, err := position.Parse(sq)
	if err != nil {
		return err
	}
	return movable(os.Stdout, demoFigures(), to, options{draw: *draw, noColor: *noColor})
}
