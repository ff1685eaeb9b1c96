package preview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailadapter/pkg/mailer/templates"
)

// LoadProps reads template props from a YAML file:
//
//	link: https://acme.com/verify?token=abc
//	app_name: Acme
//	brand_logo_url: https://cdn.acme.com/logo.png
//	brand_color: "#ff6600"
//
// Unknown keys are rejected. An empty file yields zero props.
func LoadProps(path string) (templates.Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return templates.Props{}, fmt.Errorf("read props: %w", err)
	}

	var p templates.Props
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return templates.Props{}, fmt.Errorf("parse props %s: %w", path, err)
	}
	return p, nil
}

// MergeQuery returns base with non-empty query parameters applied.
func MergeQuery(base templates.Props, q url.Values) templates.Props {
	if v := q.Get("link"); v != "" {
		base.Link = v
	}
	if v := q.Get("app_name"); v != "" {
		base.AppName = v
	}
	if v := q.Get("brand_logo_url"); v != "" {
		base.BrandLogoURL = v
	}
	if v := q.Get("brand_color"); v != "" {
		base.BrandColor = v
	}
	return base
}
