/*
Package selector provides the small amount of CSS understanding the snapshot
serializer needs: telling generated class tokens from ordinary ones,
tokenizing selectors into the class names they reference, and normalizing
declaration blocks into a compact one-line form.

Selector matching is not part of this package. Tokenizing is done with the
CSS lexer and parser of github.com/tdewolff/parse/v2.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssnap.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssnap.style")
}
