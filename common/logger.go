// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package common

import (
	"github.com/ipfs/go-log"
)

var Logger = log.Logger("gaussiant")
