package types

// ToolConfig holds settings for the external pandoc binary.
type ToolConfig struct {
	// Binary is the pandoc executable name or path (default "pandoc").
	Binary string `json:"binary" yaml:"binary"`

	// ExtraArgs are additional arguments appended verbatim to every
	// pandoc invocation. The caller is responsible for valid pandoc syntax.
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`
}

// ConvertConfig holds default settings for a batch conversion run.
type ConvertConfig struct {
	// OutputDir is where converted Markdown files are written. Empty means
	// next to each input file.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Recursive controls whether directories given as inputs are searched
	// for DOCX files in their full subtree.
	Recursive bool `json:"recursive" yaml:"recursive"`
}

// AppConfig groups all configuration for docx2md.
type AppConfig struct {
	Tool    ToolConfig    `json:"pandoc" yaml:"pandoc"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
}
