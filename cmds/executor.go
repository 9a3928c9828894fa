package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/minimav/intcode/vars"
)

type Executor struct {
	commands map[string]*Command
	Output   io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		Output:   os.Stderr,
	}

	usage := Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor and exits on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(GlobalExecutor.Output, "error: %v\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for {
		if len(args) == 0 {
			return nil
		}

		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var callArgs []reflect.Value
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				value, err := getArg(command.Func.Type().In(i), args)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if len(args) > 0 {
					args = args[1:]
				}
				callArgs = append(callArgs, value)
			}
			rets := command.Func.Call(callArgs)
			if len(rets) > 0 && !rets[0].IsNil() {
				return rets[0].Interface().(error)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}

	}
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value; print each command once
	seen := make(map[*Command]bool)
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if seen[command] || command.Hidden {
			continue
		}
		seen[command] = true
		names := []string{name}
		for _, alias := range command.Aliases {
			if alias != name {
				names = append(names, alias)
			}
		}
		line := indent + strings.Join(names, ", ")
		if args := argNames(command); args != "" {
			line += " " + args
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}

func argNames(command *Command) string {
	if !command.Func.IsValid() {
		return ""
	}
	var args []string
	t := command.Func.Type()
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			args = append(args, "["+in.Elem().String()+"]")
		} else {
			args = append(args, "<"+in.String()+">")
		}
	}
	return strings.Join(args, " ")
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elemValue)
		return ptr, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	case reflect.Slice:
		// comma separated elements
		var parts []string
		if strings.TrimSpace(str) != "" {
			parts = strings.Split(str, ",")
		}
		ret = reflect.MakeSlice(t, 0, len(parts))
		for _, part := range parts {
			elem, err := getArg(t.Elem(), []string{strings.TrimSpace(part)})
			if err != nil {
				return ret, err
			}
			ret = reflect.Append(ret, elem)
		}
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
