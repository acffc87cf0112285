package topics

// Renderer formats topic content for the terminal. ext is the topic file's
// extension, e.g. ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
