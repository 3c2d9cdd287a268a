// SPDX-License-Identifier: MIT

package matrix

import logging "github.com/ipfs/go-log/v2"

// log is the package subsystem logger. Its level follows GOLOG_LOG_LEVEL or
// logging.SetLogLevel("matrix", ...); WithLogger replaces it per matrix.
var log = logging.Logger("matrix")
