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

// Channel is a detected-channel list update. It is the owner of its
// element slice; Take transfers that ownership to the caller.
//
// Channel messages are process-local only: spec §6 requires the generic
// serializer to reject type 2 explicitly, since a ChannelInfo element
// carries nothing meaningful once detached from the detector that
// produced it other than the numeric fields below.
//
// Grounded on original_source/analyzer/msg.h's suscan_analyzer_channel_msg
// and sigutils_channel.
type Channel struct {
	Channels []ChannelInfo
}

// ChannelInfo describes one detected channel (spec §3.2, §4.2 "Channel
// (per element)").
type ChannelInfo struct {
	FC         int64 // center frequency
	FLo        int64 // low edge
	FHi        int64 // high edge
	Bandwidth  float32
	SNR        float32
	S0         float32 // signal level
	N0         float32 // noise floor
	FT         int64 // translated frequency
	Age        uint32
	PresentCnt uint32
}

// NewChannel builds a Channel message owning the given list.
func NewChannel(channels []ChannelInfo) *Channel {
	return &Channel{Channels: channels}
}

// Type implements Value.
func (c *Channel) Type() Type { return TypeChannel }

// Take transfers ownership of the channel list to the caller and clears
// the message's own reference (spec §3.3 "take" semantics).
func (c *Channel) Take() []ChannelInfo {
	ch := c.Channels
	c.Channels = nil
	return ch
}

func (c *Channel) dispose() {
	c.Channels = nil
}
