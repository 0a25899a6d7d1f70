package loader

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// paragraph is one body paragraph from the document, in reading order.
// level is the list nesting depth; -1 means the paragraph is not a list item.
type paragraph struct {
	text  string
	level int
}

func flattenDocx(data []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer r.Close()

	// The docx library only exposes the raw document.xml body, so list
	// structure (numPr/ilvl) has to be recovered from the XML itself.
	paragraphs, err := parseDocumentXML(r.Editable().GetContent())
	if err != nil {
		return "", err
	}
	return flattenParagraphs(paragraphs), nil
}

// flattenParagraphs renders paragraphs as lines. List items get four spaces
// of indentation per nesting level and a level-dependent bullet marker.
func flattenParagraphs(paragraphs []paragraph) string {
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p.level < 0 {
			lines = append(lines, p.text)
			continue
		}
		var bullet string
		switch p.level {
		case 0:
			bullet = "•"
		case 1:
			bullet = "o"
		default:
			bullet = "-"
		}
		lines = append(lines, strings.Repeat("    ", p.level)+bullet+" "+p.text)
	}
	return strings.Join(lines, "\n")
}

// parseDocumentXML walks WordprocessingML tokens and collects paragraph text
// with its list nesting level. A token walk is used instead of struct
// unmarshalling so text inside hyperlinks and other run containers is kept.
func parseDocumentXML(content string) ([]paragraph, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs  []paragraph
		inParagraph bool
		inNumPr     bool
		inText      bool
		cur         paragraph
		sb          strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				cur = paragraph{level: -1}
				sb.Reset()
			case "numPr":
				inNumPr = inParagraph
				if inNumPr {
					// numPr with no ilvl child means level 0
					cur.level = 0
				}
			case "ilvl":
				if inNumPr {
					cur.level = ilvlValue(t)
				}
			case "t":
				inText = inParagraph
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					cur.text = sb.String()
					paragraphs = append(paragraphs, cur)
				}
				inParagraph = false
			case "numPr":
				inNumPr = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return paragraphs, nil
}

func ilvlValue(el xml.StartElement) int {
	for _, attr := range el.Attr {
		if attr.Name.Local == "val" {
			if v, err := strconv.Atoi(attr.Value); err == nil && v >= 0 {
				return v
			}
		}
	}
	return 0
}
