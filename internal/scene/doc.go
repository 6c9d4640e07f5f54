// Package scene loads declarative layout scenes from YAML and resolves them
// with the pin engine.
//
// A scene describes a root size, a layout direction and a tree of views.
// Each view carries an optional directive chain written the way it would be
// chained in Go, without the receiver:
//
//	views:
//	  - name: header
//	    pin: top() horizontally() height(60)
//	  - name: body
//	    pin: below(header, aligned: left) horizontally(5%) bottom(10)
//
// Views are pinned in document order, parents before children and earlier
// siblings before later ones, so a chain may only rely on frames already
// resolved above it.
package scene
