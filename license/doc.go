// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package license inserts, updates and verifies license headers in source
files.

A [Config] maps file extensions to comment styles and template names to
license text. A [Handler] walks a file tree using a Config and edits the
leading comment block of every eligible file.

# Headers

A header is the license template rendered with [Render] and commented out
with the style registered for the file's extension:

	// Copyright 2026 Jane Doe
	//
	// Licensed under the Apache License, Version 2.0 (the "License");

Paired styles put the markers on their own lines:

	<!--
	 Copyright 2026 Jane Doe
	-->

Shebang lines, XML and HTML declarations and PHP open tags stay at the top
of the file; the header goes right after them.

# Usage

	cfg := license.NewConfig()
	h := license.NewHandler(cfg)
	res, err := h.Apply(ctx, ".", license.ApplyOptions{
		Template: "mit",
		Author:   "Jane Doe",
	})
*/
package license
