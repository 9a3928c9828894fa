package main

import (
	"github.com/minimav/intcode/amplifiers"
	"github.com/minimav/intcode/configs"
	"github.com/minimav/intcode/debugs"
	"github.com/minimav/intcode/logs"
	"github.com/minimav/intcode/nounverb"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Amplifiers amplifiers.Module
	NounVerb   nounverb.Module
	Configs    configs.Module
	Logs       logs.Module
	Debugs     debugs.Module
}
