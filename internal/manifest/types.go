package manifest

// File is the root of a manifest document.
type File struct {
	// Version of the manifest format.
	Version string `yaml:"version"`
	// UnwrapWellKnown overrides whether wrapper types unwrap to native
	// optional scalars. Nil keeps the caller's default.
	UnwrapWellKnown *bool `yaml:"unwrap_well_known,omitempty"`
	// WellKnownModule overrides the external module well-known types are imported from.
	WellKnownModule string `yaml:"well_known_module,omitempty"`
	// Modules are the output modules to resolve references for.
	Modules []Module `yaml:"modules"`
}

// Module lists the references made by one output module.
type Module struct {
	// Package is the dotted package the module is generated into. Empty is the root.
	Package string `yaml:"package"`
	// References are fully qualified dotted type names.
	References []string `yaml:"references"`
}
