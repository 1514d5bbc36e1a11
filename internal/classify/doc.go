// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package classify assigns content categories to post captions.
//
// Category is a closed enumeration; every category except Other carries a
// fixed regex pattern table, and classification scores each category by
// counting caption and hashtag matches. Event-flavored captions short-circuit
// through the Exhibition, Workshop and Music pattern sets before falling back
// to the generic Event category.
//
// Classification is total: any input resolves to at least Other, and no
// operation returns an error.
package classify
