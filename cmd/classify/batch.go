package main

import "github.com/feedlattice/classify/pkg/classifyengine"

// enclosureDTO is the wire shape of one enclosure in the batch file.
type enclosureDTO struct {
	URL       string `json:"url"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// itemDTO is the wire shape of an incoming raw item.
type itemDTO struct {
	Guid       *string        `json:"guid,omitempty"`
	Link       *string        `json:"link,omitempty"`
	Title      *string        `json:"title,omitempty"`
	Summary    *string        `json:"summary,omitempty"`
	Content    *string        `json:"content,omitempty"`
	Enclosures []enclosureDTO `json:"enclosures,omitempty"`
}

func (d itemDTO) toModel() classifyengine.Item {
	encs := make([]classifyengine.Enclosure, len(d.Enclosures))
	for i, e := range d.Enclosures {
		encs[i] = classifyengine.Enclosure{URL: e.URL, IsDefault: e.IsDefault}
	}
	return classifyengine.Item{
		Guid: d.Guid, Link: d.Link, Title: d.Title,
		Summary: d.Summary, Content: d.Content, Enclosures: encs,
	}
}

func itemToDTO(item classifyengine.Item) itemDTO {
	encs := make([]enclosureDTO, len(item.Enclosures))
	for i, e := range item.Enclosures {
		encs[i] = enclosureDTO{URL: e.URL, IsDefault: e.IsDefault}
	}
	return itemDTO{
		Guid: item.Guid, Link: item.Link, Title: item.Title,
		Summary: item.Summary, Content: item.Content, Enclosures: encs,
	}
}

// existingDTO is the wire shape of a previously recorded item.
type existingDTO struct {
	ID               string  `json:"id"`
	GuidHash         *string `json:"guidHash,omitempty"`
	GuidFragmentHash *string `json:"guidFragmentHash,omitempty"`
	LinkHash         *string `json:"linkHash,omitempty"`
	LinkFragmentHash *string `json:"linkFragmentHash,omitempty"`
	EnclosureHash    *string `json:"enclosureHash,omitempty"`
	TitleHash        *string `json:"titleHash,omitempty"`
	ContentHash      *string `json:"contentHash,omitempty"`
	SummaryHash      *string `json:"summaryHash,omitempty"`
}

func (d existingDTO) toModel() classifyengine.ExistingItem {
	return classifyengine.ExistingItem{
		ID: d.ID, GuidHash: d.GuidHash, GuidFragmentHash: d.GuidFragmentHash,
		LinkHash: d.LinkHash, LinkFragmentHash: d.LinkFragmentHash,
		EnclosureHash: d.EnclosureHash, TitleHash: d.TitleHash,
		ContentHash: d.ContentHash, SummaryHash: d.SummaryHash,
	}
}

func existingToDTO(item classifyengine.ExistingItem) existingDTO {
	return existingDTO{
		ID: item.ID, GuidHash: item.GuidHash, GuidFragmentHash: item.GuidFragmentHash,
		LinkHash: item.LinkHash, LinkFragmentHash: item.LinkFragmentHash,
		EnclosureHash: item.EnclosureHash, TitleHash: item.TitleHash,
		ContentHash: item.ContentHash, SummaryHash: item.SummaryHash,
	}
}

// batchInput is the CLI's input file/stdin shape.
type batchInput struct {
	NewItems      []itemDTO     `json:"newItems"`
	ExistingItems []existingDTO `json:"existingItems,omitempty"`
	Depth         string        `json:"depth,omitempty"`
}

// insertDTO and updateDTO mirror model.InsertAction/UpdateAction for the
// output file.
type insertDTO struct {
	Item           itemDTO `json:"item"`
	IdentifierHash string  `json:"identifierHash"`
}

type updateDTO struct {
	Item             itemDTO `json:"item"`
	IdentifierHash   string  `json:"identifierHash"`
	ExistingItemID   string  `json:"existingItemId"`
	IdentifierSource string  `json:"identifierSource"`
}

// resultDTO is the CLI's output shape.
type resultDTO struct {
	Inserts       []insertDTO `json:"inserts"`
	Updates       []updateDTO `json:"updates"`
	IdentityDepth string      `json:"identityDepth"`
}

func resultToDTO(result classifyengine.Result) resultDTO {
	out := resultDTO{IdentityDepth: result.IdentityDepth.String()}
	for _, ins := range result.Inserts {
		out.Inserts = append(out.Inserts, insertDTO{
			Item: itemToDTO(ins.Item), IdentifierHash: string(ins.IdentifierHash),
		})
	}
	for _, upd := range result.Updates {
		out.Updates = append(out.Updates, updateDTO{
			Item: itemToDTO(upd.Item), IdentifierHash: string(upd.IdentifierHash),
			ExistingItemID: upd.ExistingItemID, IdentifierSource: upd.IdentifierSource.String(),
		})
	}
	return out
}
