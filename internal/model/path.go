package model

// Path is a file the client reads polygons from or writes state and exports to.
type Path string
