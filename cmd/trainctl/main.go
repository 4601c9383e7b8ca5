package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"os"
)

type submitCmd struct {
	File string `arg:"-f,--file,required" help:"path to the manifest file"`
}

type listCmd struct {
	Status string `arg:"--status" help:"filter by the status"`
	Kind   string `arg:"--kind" help:"filter by the kind"`
}

type showCmd struct {
	ID uint64 `arg:"positional,required" help:"experiment ID"`
}

type commandCmd struct {
	ID uint64 `arg:"positional,required" help:"experiment ID"`
}

type requeueCmd struct {
	ID uint64 `arg:"positional,required" help:"experiment ID"`
}

type cancelCmd struct {
	ID uint64 `arg:"positional,required" help:"experiment ID"`
}

type watchCmd struct {
	Interval int `arg:"--interval" default:"2" help:"polling interval in seconds"`
}

var args struct {
	Submit  *submitCmd  `arg:"subcommand:submit" help:"submit the experiments from a manifest file"`
	List    *listCmd    `arg:"subcommand:list" help:"list the experiments"`
	Show    *showCmd    `arg:"subcommand:show" help:"show the experiment details"`
	Command *commandCmd `arg:"subcommand:command" help:"print the training command of the experiment"`
	Requeue *requeueCmd `arg:"subcommand:requeue" help:"put the failed or canceled experiment back to the queue"`
	Cancel  *cancelCmd  `arg:"subcommand:cancel" help:"cancel the experiment"`
	Watch   *watchCmd   `arg:"subcommand:watch" help:"watch the experiments in real time"`
	Addr    string      `arg:"--addr,env:TRAIN_DISPATCH_ADDR" default:"http://localhost:8080" help:"server address"`
	Key     string      `arg:"--key,env:TRAIN_DISPATCH_ACCESS_KEY" help:"API access key"`
}

func main() {
	p := arg.MustParse(&args)
	c := newClient(args.Addr, args.Key)
	var err error
	switch {
	case args.Submit != nil:
		err = runSubmit(c, *args.Submit)
	case args.List != nil:
		err = runList(c, *args.List)
	case args.Show != nil:
		err = runShow(c, *args.Show)
	case args.Command != nil:
		err = runCommand(c, *args.Command)
	case args.Requeue != nil:
		err = runRequeue(c, *args.Requeue)
	case args.Cancel != nil:
		err = runCancel(c, *args.Cancel)
	case args.Watch != nil:
		err = runWatch(c, *args.Watch)
	default:
		p.Fail("command is required")
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
