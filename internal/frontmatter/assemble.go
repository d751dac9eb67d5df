package frontmatter

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
)

// AssembleInput bundles everything the page frontmatter assembler needs.
type AssembleInput struct {
	Defaults map[string]any    // renderer-wide default frontmatter
	Page     map[string]any    // per-page frontmatter (wins over defaults)
	Title    string            // the page's declared title
	PageName string            // output file stem, used when Title is empty
	Primary  *apidoc.Object    // set when the page renders exactly one object
	Icons    map[string]string // object kind → icon identifier
	EditURL  string            // per-page edit link, set when derivable
}

// Assemble merges default and page metadata and derives missing fields:
// title, description, navigation (title + kind icon), seo, and editURL.
// Explicit values are never overwritten, and a boolean navigation value is
// passed through untouched. The input maps are not mutated.
func Assemble(in AssembleInput) map[string]any {
	fields := make(map[string]any, len(in.Defaults)+len(in.Page)+4)
	for k, v := range in.Defaults {
		fields[k] = v
	}
	for k, v := range in.Page {
		fields[k] = v
	}

	if _, ok := fields["title"]; !ok {
		title := in.Title
		if title == "" {
			title = TitleFromName(in.PageName)
		}
		fields["title"] = title
	}

	if _, ok := fields["description"]; !ok && in.Primary != nil {
		if line := in.Primary.FirstDocstringLine(); line != "" {
			fields["description"] = line
		}
	}

	assembleNavigation(fields, in)

	if _, ok := fields["seo"]; !ok {
		description, _ := fields["description"].(string)
		fields["seo"] = map[string]any{
			"title":       fields["title"],
			"description": description,
		}
	}

	if _, ok := fields["editURL"]; !ok && in.EditURL != "" {
		fields["editURL"] = in.EditURL
	}

	return fields
}

// assembleNavigation fills navigation.title and navigation.icon. When the
// existing navigation value is a boolean the derivation is skipped entirely.
func assembleNavigation(fields map[string]any, in AssembleInput) {
	nav := map[string]any{}
	switch existing := fields["navigation"].(type) {
	case nil:
	case bool:
		return
	case map[string]any:
		for k, v := range existing {
			nav[k] = v
		}
	default:
		return
	}

	if _, ok := nav["title"]; !ok {
		nav["title"] = fields["title"]
	}
	if _, ok := nav["icon"]; !ok {
		nav["icon"] = iconFor(in.Primary, in.Icons)
	}
	fields["navigation"] = nav
}

// iconFor looks up the icon for the primary object's kind, falling back to
// the generic "page" entry.
func iconFor(primary *apidoc.Object, icons map[string]string) string {
	key := "page"
	if primary != nil {
		key = string(primary.Kind.Normalize())
	}
	if icon, ok := icons[key]; ok && icon != "" {
		return icon
	}
	if icon, ok := icons["page"]; ok && icon != "" {
		return icon
	}
	return "i-heroicons-document"
}

// EnsureUID ensures fields carries a uid, generating one only when missing.
func EnsureUID(fields map[string]any) (uidStr string, changed bool) {
	if v, ok := fields["uid"]; ok {
		return strings.TrimSpace(fmt.Sprint(v)), false
	}
	uidStr = uuid.NewString()
	fields["uid"] = uidStr
	return uidStr, true
}

// TitleFromName converts a kebab or snake file stem into Title Case:
// "getting-started" -> "Getting Started".
func TitleFromName(name string) string {
	caser := cases.Title(language.English)
	base := strings.ReplaceAll(name, "_", "-")
	parts := strings.Split(base, "-")
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, " ")
}
