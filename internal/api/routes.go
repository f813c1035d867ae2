package api

import "github.com/JaimeStill/sedam/pkg/routes"

// Groups lists every domain's routes in mount order.
func (d *Domain) Groups() []routes.Group {
	return []routes.Group{
		d.Policies.Handler().Routes(),
		d.Contents.Handler().Routes(),
		d.Media.Handler().Routes(),
		d.Exports.Handler().Routes(),
		d.Prompts.Handler().Routes(),
	}
}
