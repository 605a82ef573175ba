package shell

type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdList
	CmdChangeDir
	CmdSearch
	CmdCreate
	CmdDelete
	CmdRename
	CmdMove
	CmdPermissions
	CmdHelp
	CmdExit
)

type commandSpec struct {
	Kind    CommandKind
	Name    string
	Args    string
	MinArgs int
	Usage   string
	Desc    string
}

// commandTable drives dispatch, usage checks and help, in help order.
var commandTable = []commandSpec{
	{CmdList, "ls", "[directory]", 0, "", "List files in the current or specified directory"},
	{CmdChangeDir, "cd", "<directory>", 1, "Usage: cd <directory>", "Change to specified directory"},
	{CmdSearch, "search", "<file>", 1, "Usage: search <filename>", "Search for a file in the current directory and subdirectories"},
	{CmdCreate, "create", "<file>", 1, "Usage: create <filename>", "Create a new file"},
	{CmdDelete, "delete", "<file>", 1, "Usage: delete <filename>", "Delete a file"},
	{CmdRename, "rename", "<old> <new>", 2, "Usage: rename <oldName> <newName>", "Rename a file"},
	{CmdMove, "move", "<src> <dest>", 2, "Usage: move <source> <destination>", "Move a file"},
	{CmdPermissions, "permissions", "<file>", 1, "Usage: permissions <filename>", "Display file permissions"},
	{CmdHelp, "help", "", 0, "", "Display this help message"},
	{CmdExit, "exit", "", 0, "", "Exit the application"},
}

var commandsByName = func() map[string]commandSpec {
	m := make(map[string]commandSpec, len(commandTable))
	for _, c := range commandTable {
		m[c.Name] = c
	}
	return m
}()

type Command struct {
	Kind CommandKind
	Name string
	Args []string
}

// ParseCommand classifies tokens by their first element. Names are matched
// exactly and case-sensitively. tokens must not be empty.
func ParseCommand(tokens []string) Command {
	c := Command{Kind: CmdUnknown, Name: tokens[0], Args: tokens[1:]}
	if spec, ok := commandsByName[c.Name]; ok {
		c.Kind = spec.Kind
	}

	return c
}

// Arg returns the i-th argument or d when it is missing.
func (c Command) Arg(i int, d string) string {
	if i < len(c.Args) {
		return c.Args[i]
	}

	return d
}

// usage returns the usage line when c has too few arguments.
func (c Command) usage() (string, bool) {
	spec, ok := commandsByName[c.Name]
	if !ok || len(c.Args) >= spec.MinArgs {
		return "", false
	}

	return spec.Usage, true
}
