package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents returns components pre-populated with the shared error
// schema and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Human-readable message"},
					"fields": {
						Type: "array",
						Items: &Schema{
							Type: "object",
							Properties: map[string]*Schema{
								"field":   {Type: "string"},
								"message": {Type: "string"},
							},
						},
					},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          errorResponse("Invalid request or business rule conflict"),
			"NotFound":            errorResponse("Resource not found"),
			"UnprocessableEntity": errorResponse("Validation failed"),
			"InternalError":       errorResponse("Unexpected server error"),
		},
	}
}

// AddSchemas merges schemas, replacing entries with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}
