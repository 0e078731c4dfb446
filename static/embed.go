package staticfiles

import (
	"embed"
	"io/fs"
)

//go:embed index.html css/* js/*
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}

func Index() []byte {
	b, _ := embedded.ReadFile("index.html")
	return b
}
