package snapshot

import (
	"fmt"
	"strings"
)

// Document section markers. A payload containing the closing marker text is
// not escaped; the format accepts that limitation.
const (
	documentOpenTag  = "<repo-to-text>"
	documentCloseTag = "</repo-to-text>"
	treeOpenTag      = "<directory_structure>"
	treeCloseTag     = "</directory_structure>"
)

// RenderDocument assembles the final text artifact: opening marker, root
// directory name, the filtered tree, then one content section per collected
// file in collector order.
func RenderDocument(rootName string, hasGitignore bool, treeText string, entries []FileContent) string {
	var b strings.Builder

	b.WriteString(documentOpenTag + "\n")
	b.WriteString(fmt.Sprintf("Directory: %s\n\n", rootName))
	b.WriteString("Directory Structure:\n")
	b.WriteString(treeOpenTag + "\n.\n")

	// The VCS ignore file is filtered out of the listing by its own rules,
	// so it is reinstated here when present.
	if hasGitignore {
		b.WriteString("├── " + GitignoreFileName + "\n")
	}

	b.WriteString(treeText + "\n" + treeCloseTag + "\n")

	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("\n<content full_path=\"%s\">\n", entry.Path))
		b.WriteString(entry.Payload)
		b.WriteString("\n</content>\n")
	}

	b.WriteString("\n" + documentCloseTag + "\n")
	return b.String()
}
