package definition

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/errors"
)

// decodeXML reads documents shaped like:
//
//	<stylesheet>
//	  <set name="reset"><prop name="margin">0</prop></set>
//	  <rule id="base" selector="body" apply="reset">
//	    <selector>html</selector>
//	    <decl name="color" important="true">red</decl>
//	    <decl name="width" modifiers="!important">10px<modifier>/* old */</modifier></decl>
//	    <rule selector="body a">...</rule>
//	  </rule>
//	  <batch set="reset" rules="base, other"/>
//	</stylesheet>
func decodeXML(data []byte) (*Sheet, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrSheetParse, "invalid XML definition")
	}

	root := doc.SelectElement("stylesheet")
	if root == nil {
		return nil, errors.New(errors.ErrSheetParse, "missing <stylesheet> root element")
	}

	sheet := &Sheet{}
	for _, el := range root.ChildElements() {
		switch el.Tag {
		case "set":
			set, err := xmlSet(el)
			if err != nil {
				return nil, err
			}
			sheet.Sets = append(sheet.Sets, set)
		case "rule":
			rule, err := xmlRule(el)
			if err != nil {
				return nil, err
			}
			sheet.Rules = append(sheet.Rules, rule)
		case "batch":
			sheet.Batches = append(sheet.Batches, Batch{
				Set:   el.SelectAttrValue("set", ""),
				Rules: splitList(el.SelectAttrValue("rules", "")),
			})
		default:
			return nil, errors.Newf(errors.ErrSheetParse,
				"unexpected <%s> in <stylesheet>", el.Tag)
		}
	}
	return sheet, nil
}

func xmlSet(el *etree.Element) (PropertySet, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return PropertySet{}, errors.New(errors.ErrSheetParse, "<set> requires a name attribute")
	}
	props := css.NewProperties()
	for _, p := range el.ChildElements() {
		if p.Tag != "prop" {
			return PropertySet{}, errors.Newf(errors.ErrSheetParse,
				"unexpected <%s> in set %q", p.Tag, name)
		}
		props.Set(p.SelectAttrValue("name", ""), strings.TrimSpace(p.Text()))
	}
	return PropertySet{Name: name, Properties: props}, nil
}

func xmlRule(el *etree.Element) (RuleDef, error) {
	def := RuleDef{
		ID:      el.SelectAttrValue("id", ""),
		Extends: el.SelectAttrValue("extends", ""),
		Apply:   splitList(el.SelectAttrValue("apply", "")),
	}
	if s := el.SelectAttrValue("selector", ""); s != "" {
		def.Selectors = append(def.Selectors, s)
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "selector":
			def.Selectors = append(def.Selectors, strings.TrimSpace(child.Text()))
		case "decl":
			decl, err := xmlDecl(child)
			if err != nil {
				return RuleDef{}, err
			}
			def.Declarations = append(def.Declarations, decl)
		case "rule":
			nested, err := xmlRule(child)
			if err != nil {
				return RuleDef{}, err
			}
			def.Nested = append(def.Nested, nested)
		default:
			return RuleDef{}, errors.Newf(errors.ErrSheetParse,
				"unexpected <%s> in <rule>", child.Tag)
		}
	}
	return def, nil
}

// xmlDecl reads a <decl>. The modifiers attribute holds space-separated
// tokens; <modifier> children hold one token each, spaces included, and
// follow the attribute tokens.
func xmlDecl(el *etree.Element) (DeclDef, error) {
	decl := DeclDef{
		Name:      el.SelectAttrValue("name", ""),
		Important: el.SelectAttrValue("important", "") == "true",
		Modifiers: strings.Fields(el.SelectAttrValue("modifiers", "")),
	}

	var value strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			value.WriteString(t.Data)
		case *etree.Element:
			if t.Tag != "modifier" {
				return DeclDef{}, errors.Newf(errors.ErrSheetParse,
					"unexpected <%s> in <decl>", t.Tag)
			}
			decl.Modifiers = append(decl.Modifiers, strings.TrimSpace(t.Text()))
		}
	}
	decl.Value = strings.TrimSpace(value.String())
	return decl, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
