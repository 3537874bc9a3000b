package openapi

import "maps"

// NewSpec creates a Spec with the given title, version, and empty components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: Version,
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Components: NewComponents(),
		Paths:      make(map[string]*PathItem),
	}
}

// AddServer appends a server URL to the spec.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// SetDescription sets the API description in the info object.
func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddTag appends a tag definition.
func (s *Spec) AddTag(name, description string) {
	s.Tags = append(s.Tags, &Tag{Name: name, Description: description})
}

// AddTagGroup appends an x-tagGroups entry.
func (s *Spec) AddTagGroup(name string, tags []string) {
	s.TagGroups = append(s.TagGroups, &TagGroup{Name: name, Tags: tags})
}

// NewComponents creates Components with empty registries.
func NewComponents() *Components {
	return &Components{
		Schemas:         make(map[string]*Schema),
		SecuritySchemes: make(map[string]*SecurityScheme),
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddSecurityScheme registers a named security scheme.
func (c *Components) AddSecurityScheme(name string, scheme *SecurityScheme) {
	c.SecuritySchemes[name] = scheme
}
