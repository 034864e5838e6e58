/*
Copyright (c) The acdp Authors.

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

package message

import hversion "github.com/hashicorp/go-version"

// WireVersion is the ACDP wire format version implemented by this
// module. It has no analog in the teacher (PTP negotiates version
// inline in its packet header); it exists so analyzer and client builds
// that drift can detect incompatibility during the SourceInit handshake
// rather than failing a decode deep in a stream.
const WireVersion = "1.0.0"

// ProtocolVersion parses WireVersion once at package init.
var ProtocolVersion = hversion.Must(hversion.NewVersion(WireVersion))

// CompatibleWith reports whether a peer advertising peerVersion can
// interoperate with this build. Peers are compatible when they share the
// same major version component; ACDP does not promise wire compatibility
// across major versions.
func CompatibleWith(peerVersion string) (bool, error) {
	peer, err := hversion.NewVersion(peerVersion)
	if err != nil {
		return false, err
	}
	return peer.Segments()[0] == ProtocolVersion.Segments()[0], nil
}
