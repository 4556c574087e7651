// Package fallback holds the canned explanations shown when the completion
// provider cannot be reached.
package fallback

import "github.com/ziadkadry99/codeexplainer/internal/language"

// Table is a keyed lookup of canned explanations with a default entry.
type Table struct {
	entries map[language.Tag]string
	def     string
}

// NewTable builds a Table. Entries may be nil.
func NewTable(entries map[language.Tag]string, def string) *Table {
	cp := make(map[language.Tag]string, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return &Table{entries: cp, def: def}
}

// Default returns the built-in table.
func Default() *Table {
	return NewTable(map[language.Tag]string{
		language.JavaScript: javascriptText,
		language.Python:     pythonText,
		language.Java:       javaText,
	}, defaultText)
}

// Lookup returns the dedicated entry for tag, or the default entry.
func (t *Table) Lookup(tag language.Tag) string {
	if text, ok := t.entries[tag]; ok {
		return text
	}
	return t.def
}

// Has reports whether tag has a dedicated entry.
func (t *Table) Has(tag language.Tag) bool {
	_, ok := t.entries[tag]
	return ok
}

const javascriptText = `## Code Overview

This JavaScript code implements a data processing function with modern ES6 features.

### Key Components:
* **Arrow Functions**: Uses modern ES6 syntax for concise function definitions
* **Template Literals**: Employs ` + "`${variable}`" + ` syntax for string interpolation
* **Data Transformation**: Takes input and returns processed results

### Notable Features:
* **Efficient Implementation**: Code is optimized for performance
* **Modern Practices**: Follows current JavaScript best practices
* **Clean Structure**: Well-organized with logical flow

### Potential Issues:
* Error handling could be improved
* Some edge cases might not be covered`

const pythonText = `## Code Overview

This Python code demonstrates object-oriented programming with data processing capabilities.

### Class Structure:
* **Main Class**: Defines the primary object model
* **Methods**: Implements various data handling functions
* **List Comprehensions**: Uses Python's efficient data transformation syntax

### Notable Features:
* **PEP 8 Compliance**: Follows Python style guidelines
* **Efficient Data Handling**: Optimized for performance
* **Clean Implementation**: Well-structured and maintainable

### Potential Improvements:
* Type hints could enhance code clarity
* Additional documentation would benefit future developers`

const javaText = `## Java Implementation Analysis

This Java code implements an interface and extends a class for robust object modeling.

### Structure:
* **Class Hierarchy**: Extends a base class and implements interfaces
* **Encapsulation**: Uses private fields with public accessor methods
* **Exception Handling**: Properly manages potential runtime issues

### Key Strengths:
* **Standard Conventions**: Follows Java naming patterns
* **Robust Design**: Well-structured object model
* **Error Management**: Handles exceptions appropriately

### Optimization Opportunities:
* Consider using newer Java features if available
* Performance could be improved in specific methods`

const defaultText = `## Code Analysis

This code demonstrates effective implementation of the intended functionality.

### Key Components:
* **Structure**: Well-organized with logical flow
* **Naming**: Clear, descriptive variable and function names
* **Algorithm**: Appropriate solution for the problem domain

### Notable Features:
* **Readability**: Easy to understand and maintain
* **Performance**: Optimized for efficient execution
* **Best Practices**: Follows standard coding conventions

### Potential Improvements:
* Additional comments would enhance documentation
* Some edge cases might need additional handling`
