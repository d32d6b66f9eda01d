package catalog

// Card is a single display record. Cards have no identity field; two cards
// with the same title are distinguished only by their position in a Catalog.
type Card struct {
	Title       string `yaml:"title"`
	Image       string `yaml:"image,omitempty"` // URI, or empty for no image
	Description string `yaml:"description"`
}

// HasImage reports whether the card carries an image URI.
func (c Card) HasImage() bool {
	return c.Image != ""
}
