package systemcodes

const (
	ErrorCodeGeneric = 3
)
