// Package filter reduces a content list to the items matching a selection.
//
// Three dimensions are checked, and an item must pass every active one:
//
//   - Category: the item's category equals the selected label. Items without a
//     category never match a selected category.
//   - Tags: with MatchAny (default) the item shares at least one selected tag;
//     with MatchAll it carries every selected tag. Items without tags never
//     match a non-empty tag selection.
//   - Query: case-insensitive substring of the title, summary or body.
//
// An inactive dimension (no category, empty tag set, empty query) is a no-op.
// Apply is pure and stable: the result is a subsequence of the input in the
// same relative order, and calling it again with the same selection returns
// the same items.
package filter
