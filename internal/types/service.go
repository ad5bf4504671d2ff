package types

// Category represents service categories
type Category string

const (
	CategoryTime       Category = "time"
	CategoryFilesystem Category = "filesystem"
	CategoryLogs       Category = "logs"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Category     Category `json:"category" yaml:"category"`
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	Tools        []Tool   `json:"tools" yaml:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Returns     string      `json:"returns" yaml:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// Result represents a service execution result
type Result struct {
	Success bool                   `json:"success" yaml:"success"`
	Data    map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error   *string                `json:"error,omitempty" yaml:"error,omitempty"`
}

// Success builds a successful result
func Success(data map[string]interface{}) (*Result, error) {
	return &Result{Success: true, Data: data}, nil
}

// Failure builds a failed result carrying message
func Failure(message string) (*Result, error) {
	return &Result{Success: false, Error: &message}, nil
}
