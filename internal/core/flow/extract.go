package flow

// Extraction is the result of running the engine over one flow document.
type Extraction struct {
	// Prompts holds one record per prompt id, ordered by prompt name.
	Prompts []ClassifiedPrompt
	// All holds every classified reference in scan order, before deduplication.
	All []ClassifiedPrompt
}

// Extract parses a flow document and returns its classified prompts.
// A document without any recognized prompt shape yields an empty extraction.
func Extract(data []byte) (*Extraction, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.Extract(), nil
}

// Extract classifies every prompt reference in the document.
func (d *Document) Extract() *Extraction {
	announcements := d.Announcements()

	all := []ClassifiedPrompt{}
	for _, m := range d.Modules() {
		disconnected := m.Disconnected()
		for _, ref := range LocatePrompts(m) {
			all = append(all, Classify(ref, announcements, disconnected))
		}
	}

	return &Extraction{
		Prompts: Deduplicate(all),
		All:     all,
	}
}
