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

package cmd

import (
	"fmt"
	"net"

	"github.com/suscan/acdp/message"
	"github.com/suscan/acdp/transport"
)

// dial opens a TCP connection to the configured acdpd, advertises this
// client's protocol version as the handshake's first frame, and wraps
// the connection in a transport.Reader. acdpd answers with a SourceInit
// status before any stream content; a failure code there means the
// daemon rejected the version and closed the connection.
func dial() (*transport.Reader, net.Conn, error) {
	conn, err := net.Dial("tcp", rootAddrFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to %s: %w", rootAddrFlag, err)
	}
	w := transport.NewWriter(conn)
	if err := w.WriteFrame([]byte(message.WireVersion)); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("sending version handshake: %w", err)
	}

	r := transport.NewReader(conn)
	v, err := r.ReadValue()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("reading handshake reply: %w", err)
	}
	init, ok := v.(*message.Status)
	if !ok || init.Typ != message.TypeSourceInit {
		conn.Close()
		return nil, nil, fmt.Errorf("unexpected handshake reply %s", v.Type())
	}
	if init.Code != message.InitSuccess {
		conn.Close()
		return nil, nil, fmt.Errorf("acdpd rejected protocol version %s: %s", message.WireVersion, init.Message)
	}

	return r, conn, nil
}
