// Package manifest loads YAML files describing a batch of output modules and
// the type references each of them makes.
package manifest
