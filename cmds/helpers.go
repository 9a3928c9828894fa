package cmds

// Var defines name <value> setting the returned variable. name. resets it
// and is left out of usage.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc("set "+name))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines name to turn the returned flag on and a hidden !name to
// turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc("enable "+name))

	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines name <value>, appending to the returned slice each time.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc("append to "+name+", repeatable"))
	return &value
}
