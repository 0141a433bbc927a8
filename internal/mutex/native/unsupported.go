// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex && !mutex_posix && !mutex_critsec && !mutex_sema && !unix && !windows && !plan9

package native

// No lock primitive is known for this target. Refuse to build rather than
// produce a binary without synchronization; single-threaded programs can
// opt out of locking with -tags nomutex.
var _ = nomutexTagRequired_NoMutexImplementationForThisPlatform
