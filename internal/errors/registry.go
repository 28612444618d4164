package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://htmlgen.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (H001-H019)
	// ============================================

	"H001": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No htmlgen.json was found in the project directory.",
		DocURL:   docBase + "H001",
	},
	"H002": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "htmlgen.json could not be parsed. Check the JSON syntax.",
		DocURL:   docBase + "H002",
	},
	"H003": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The server port must be between 1 and 65535.",
		DocURL:   docBase + "H003",
	},
	"H004": {
		Category: CategoryConfig,
		Message:  "Invalid doctype",
		Detail:   "The default doctype must be one of html5, html4, xhtml1.0 or xhtml1.1.",
		DocURL:   docBase + "H004",
	},
	"H005": {
		Category: CategoryConfig,
		Message:  "Config write failed",
		Detail:   "htmlgen.json could not be written.",
		DocURL:   docBase + "H005",
	},

	// ============================================
	// Document Errors (H020-H039)
	// ============================================

	"H020": {
		Category: CategoryDocument,
		Message:  "Invalid document syntax",
		Detail:   "The document description is not valid YAML or JSON.",
		DocURL:   docBase + "H020",
	},
	"H021": {
		Category: CategoryDocument,
		Message:  "Unknown block type",
		Detail:   "Each body block must have exactly one of: heading, paragraph, text, raw, preformatted, image, link, list, container, table, markdown.",
		DocURL:   docBase + "H021",
	},
	"H022": {
		Category: CategoryDocument,
		Message:  "Unknown container kind",
		Detail:   "Container kinds are the sectioning tags: div, article, main, section, header, footer, nav, aside, figure, figcaption, address, blockquote.",
		DocURL:   docBase + "H022",
	},
	"H023": {
		Category: CategoryDocument,
		Message:  "Unknown doctype",
		Detail:   "The doctype must be one of html5, html4, xhtml1.0 or xhtml1.1.",
		DocURL:   docBase + "H023",
	},
	"H024": {
		Category: CategoryDocument,
		Message:  "Missing required field",
		Detail:   "A block is missing a field it cannot be rendered without.",
		DocURL:   docBase + "H024",
	},
	"H025": {
		Category: CategoryDocument,
		Message:  "Document read failed",
		Detail:   "The document file could not be read.",
		DocURL:   docBase + "H025",
	},
	"H026": {
		Category: CategoryDocument,
		Message:  "Markdown conversion failed",
		Detail:   "A markdown block could not be converted to HTML.",
		DocURL:   docBase + "H026",
	},

	// ============================================
	// Serve Errors (H040-H059)
	// ============================================

	"H040": {
		Category: CategoryServe,
		Message:  "Document not found",
		Detail:   "No document with this name exists in the source directory.",
		DocURL:   docBase + "H040",
	},
	"H041": {
		Category: CategoryServe,
		Message:  "Server failed",
		Detail:   "The preview server stopped unexpectedly.",
		DocURL:   docBase + "H041",
	},
	"H042": {
		Category: CategoryServe,
		Message:  "Watcher failed",
		Detail:   "The source directory could not be watched for changes.",
		DocURL:   docBase + "H042",
	},

	// ============================================
	// Publish Errors (H060-H079)
	// ============================================

	"H060": {
		Category: CategoryPublish,
		Message:  "Bucket not configured",
		Detail:   "Set publish.bucket in htmlgen.json or pass --bucket.",
		DocURL:   docBase + "H060",
	},
	"H061": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "The rendered page could not be stored.",
		DocURL:   docBase + "H061",
	},

	// ============================================
	// CLI Errors (H080-H099)
	// ============================================

	"H080": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with arguments it does not accept.",
		DocURL:   docBase + "H080",
	},
	"H081": {
		Category: CategoryCLI,
		Message:  "Output write failed",
		Detail:   "The rendered page could not be written to the output directory.",
		DocURL:   docBase + "H081",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
