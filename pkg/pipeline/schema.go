package pipeline

import "github.com/go-gota/gota/dataframe"

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []string // "float", "int", "bool" or "string"
}

// SchemaOf reads the column names and kinds of df.
func SchemaOf(df dataframe.DataFrame) Schema {
	types := df.Types()
	s := Schema{FeatureNames: df.Names(), Types: make([]string, len(types))}
	for i, t := range types {
		s.Types[i] = string(t)
	}
	return s
}
