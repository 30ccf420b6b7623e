// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
)

func (api *restAPI) fillTaxonomy(ctx *context, taxonomy wordpress.Taxonomy, repr *restdata.Taxonomy) error {
	*repr = restdata.Taxonomy{
		ID:           taxonomy.Name,
		Name:         taxonomy.Name,
		Label:        taxonomy.Label,
		Labels:       taxonomy.Labels,
		Hierarchical: taxonomy.Hierarchical,
		Public:       taxonomy.Public,
		ShowUI:       taxonomy.ShowUI,
		Builtin:      taxonomy.Builtin,
		ObjectTypes:  taxonomy.ObjectTypes,
		Meta: restdata.Meta{
			Supports:  TaxonomyKind.Supports,
			MediaType: TaxonomyKind.MediaType,
		},
	}
	err := api.urls(ctx, "id", taxonomy.Name).URL(&repr.Meta.Links.Self, TaxonomyKind.Name).Error
	if err == nil {
		err = api.urls(ctx, "parent_id", taxonomy.Name).URL(&repr.Meta.Links.Terms, TermKind.PluralName).Error
	}
	return err
}

// TaxonomyList returns every taxonomy.  There are few enough that
// this collection is not paged.
func (api *restAPI) TaxonomyList(ctx *context) (interface{}, error) {
	taxonomies, err := api.Blog.Taxonomies()
	if err != nil {
		return nil, err
	}
	resp := restdata.TaxonomyList{
		Items: make([]restdata.Taxonomy, len(taxonomies)),
		Meta:  restdata.CollectionMeta{Supports: TaxonomyKind.CollectionSupports},
	}
	for i, taxonomy := range taxonomies {
		if err = api.fillTaxonomy(ctx, taxonomy, &resp.Items[i]); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (api *restAPI) TaxonomyGet(ctx *context) (interface{}, error) {
	taxonomy, err := api.Blog.Taxonomy(ctx.Vars["id"])
	if err != nil {
		return nil, err
	}
	resp := restdata.Taxonomy{}
	err = api.fillTaxonomy(ctx, taxonomy, &resp)
	return resp, err
}

// fillTerm builds a term representation.  A term always links to its
// taxonomy, and to its parent term only if it has one.
func (api *restAPI) fillTerm(ctx *context, term wordpress.Term, repr *restdata.Term) error {
	*repr = restdata.Term{
		ID:          term.ID,
		Name:        term.Name,
		Slug:        term.Slug,
		Description: term.Description,
		Count:       term.Count,
		Taxonomy:    restdata.TaxonomySummary{Name: term.Taxonomy},
		Meta: restdata.Meta{
			Supports:  TermKind.Supports,
			MediaType: TermKind.MediaType,
		},
	}
	err := api.urls(ctx, "id", term.Taxonomy).URL(&repr.Taxonomy.Self, TaxonomyKind.Name).Error
	if err == nil {
		err = api.urls(ctx, "parent_id", term.Taxonomy, "id", term.ID).
			URL(&repr.Meta.Links.Self, TermKind.Name).
			Error
	}
	if err == nil && wordpress.HasID(term.ParentID) {
		repr.Parent = &restdata.TermParent{ID: term.ParentID}
		err = api.urls(ctx, "parent_id", term.Taxonomy, "id", term.ParentID).
			URL(&repr.Parent.Self, TermKind.Name).
			Error
		repr.Meta.Links.Parent = repr.Parent.Self
	}
	return err
}

func (api *restAPI) TermList(ctx *context) (interface{}, error) {
	var (
		paging pageRequest
		q      termQuery
		terms  []wordpress.Term
		err    error
	)
	paging, err = api.pageRequest(ctx, TermKind)
	if err == nil {
		err = ctx.Decode(&q)
	}
	if err == nil {
		terms, err = api.Blog.Terms(ctx.Vars["parent_id"], wordpress.TermFilter{
			Page:   paging.Window(),
			Search: q.Search,
		})
	}
	if err != nil {
		return nil, err
	}

	resp := restdata.TermList{Items: make([]restdata.Term, len(terms))}
	for i, term := range terms {
		if err = api.fillTerm(ctx, term, &resp.Items[i]); err != nil {
			return nil, err
		}
	}
	resp.Meta, err = api.collectionMeta(ctx, TermKind, paging, len(terms))
	return resp, err
}

func (api *restAPI) TermGet(ctx *context) (interface{}, error) {
	term, err := api.Blog.Term(ctx.Vars["parent_id"], ctx.Vars["id"])
	if err != nil {
		return nil, err
	}
	resp := restdata.Term{}
	err = api.fillTerm(ctx, term, &resp)
	return resp, err
}
