// SPDX-License-Identifier: MIT

// Package registry maps problem names to instances.
//
// Construction is explicit: a Builder collects Factory closures, Build runs
// them once in registration order and returns an immutable Registry. There
// is no package-level table; callers pass the Registry to whatever consumes
// it. One formula family usually registers many entries, one per dimension
// or parameter choice.
package registry
