package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}

// ExecuteLeading runs leading flag-style commands on the global executor and
// returns the positional remainder.
func ExecuteLeading(args []string) []string {
	rest, err := GlobalExecutor.ExecuteLeading(args)
	if err != nil {
		panic(err)
	}
	return rest
}
