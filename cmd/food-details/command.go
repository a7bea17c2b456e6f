package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdShow commandKind = iota
	cmdIncFood
	cmdDecFood
	cmdIncExtra
	cmdDecExtra
	cmdFavorite
	cmdOrder
	cmdHelp
	cmdQuit
)

type command struct {
	kind commandKind
	id   uint
}

const helpText = `+ / -        change food quantity
+ N / - N    change quantity of extra N
fav          toggle favorite
order        place the order
show, help, quit`

var errUnknownCommand = errors.New("unknown command, type help")

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdShow}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "+", "-":
		inc := fields[0] == "+"
		if len(fields) == 1 {
			if inc {
				return command{kind: cmdIncFood}, nil
			}
			return command{kind: cmdDecFood}, nil
		}
		id, err := strconv.ParseUint(fields[1], 10, 0)
		if err != nil {
			return command{}, fmt.Errorf("invalid extra id %q", fields[1])
		}
		if inc {
			return command{kind: cmdIncExtra, id: uint(id)}, nil
		}
		return command{kind: cmdDecExtra, id: uint(id)}, nil
	case "fav", "f":
		return command{kind: cmdFavorite}, nil
	case "order", "o":
		return command{kind: cmdOrder}, nil
	case "show", "s":
		return command{kind: cmdShow}, nil
	case "help", "h", "?":
		return command{kind: cmdHelp}, nil
	case "quit", "q", "exit":
		return command{kind: cmdQuit}, nil
	}
	return command{}, errUnknownCommand
}
