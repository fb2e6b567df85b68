/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/reason"
)

// CodedError is an error that originates from a reply line and knows the
// reply code the daemon sent.
type CodedError interface {
	error

	// ReplyCode returns the code of the failed reply, e.g. 8001.
	ReplyCode() code.Code
}

// ReasonedError is an error that knows the dotted reason of its reply kind,
// e.g. "runtime.route_not_found".
//
// Having a separate interface lets adapters degrade gracefully: an error
// that only provides a code is still mapped by its band.
type ReasonedError interface {
	error

	// ReplyReason returns the kind reason. It MAY be empty.
	ReplyReason() reason.Reason
}

// TextError is an error that carries the daemon's own wording of the
// failure.
type TextError interface {
	error

	// ReplyText returns the reply text. It MAY be empty.
	ReplyText() string
}
