/*
Package typeref provides a structured representation for textual type
references, based on the canonical dotted format `package.path.Name`.

A bare reference such as `int` has a single segment. A qualified reference
such as `app.models.User` is split into the package path (`app.models`) and
the type name (`User`). This package centralizes the parsing and formatting
of these references so the registry never deals with raw strings.
*/
package typeref
