package port

type FileWalker interface {
	Collect(root string, recursive bool) ([]string, error)
}

type FileReader interface {
	ReadFile(path string) (string, error)
}

type FileWriter interface {
	WriteFile(path, content string) error
}
