package optimism

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/andybalholm/brotli"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
)

const (
	derivationVersion0 = 0
	// maxRLPBytesPerChannel caps the decompressed size of a channel
	maxRLPBytesPerChannel = 10_000_000

	channelIDLength = 16
	// channel id, frame number, data length, is last
	frameOverhead = channelIDLength + 2 + 4 + 1

	singularBatchType = 0
	spanBatchType     = 1

	channelVersionBrotli = 0x01
)

var (
	ErrInvalidFrame    = errors.New("invalid frame")
	ErrChannelTooLarge = errors.New("channel too large")
	errSpanBatch       = errors.New("span batches are not supported")
)

type ChannelID [channelIDLength]byte

type Frame struct {
	ID          ChannelID
	FrameNumber uint16
	Data        []byte
	IsLast      bool
}

// ParseFrames decodes the frames posted in the calldata of a batcher transaction
func ParseFrames(data []byte) ([]Frame, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty batcher data", ErrInvalidFrame)
	}
	if data[0] != derivationVersion0 {
		return nil, fmt.Errorf("%w: unsupported derivation version %d", ErrInvalidFrame, data[0])
	}
	buf := data[1:]
	var frames []Frame
	for len(buf) > 0 {
		if len(buf) < frameOverhead {
			return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidFrame, len(buf))
		}
		var f Frame
		copy(f.ID[:], buf[:channelIDLength])
		f.FrameNumber = binary.BigEndian.Uint16(buf[channelIDLength:])
		dataLen := binary.BigEndian.Uint32(buf[channelIDLength+2:])
		buf = buf[channelIDLength+6:]
		if uint64(len(buf)) < uint64(dataLen)+1 {
			return nil, fmt.Errorf("%w: frame data length %d exceeds remaining %d bytes", ErrInvalidFrame, dataLen, len(buf))
		}
		f.Data = buf[:dataLen]
		switch buf[dataLen] {
		case 0:
		case 1:
			f.IsLast = true
		default:
			return nil, fmt.Errorf("%w: invalid is_last byte %d", ErrInvalidFrame, buf[dataLen])
		}
		buf = buf[dataLen+1:]
		frames = append(frames, f)
	}
	return frames, nil
}

// Channel is a complete, ordered set of frames
type Channel struct {
	ID     ChannelID
	Frames []Frame
}

// Data concatenates the frame payloads
func (c Channel) Data() []byte {
	var buf bytes.Buffer
	for _, f := range c.Frames {
		buf.Write(f.Data)
	}
	return buf.Bytes()
}

// CompleteChannels groups frames by channel and keeps the channels whose frames are all present.
// Channels are returned in order of first appearance.
func CompleteChannels(frames []Frame) []Channel {
	byID := make(map[ChannelID][]Frame)
	var order []ChannelID
	for _, f := range frames {
		if _, ok := byID[f.ID]; !ok {
			order = append(order, f.ID)
		}
		byID[f.ID] = append(byID[f.ID], f)
	}

	channels := make([]Channel, 0, len(order))
	for _, id := range order {
		fs := byID[id]
		sort.Slice(fs, func(i, j int) bool { return fs[i].FrameNumber < fs[j].FrameNumber })
		complete := fs[len(fs)-1].IsLast
		for i, f := range fs {
			if int(f.FrameNumber) != i {
				complete = false
				break
			}
		}
		if complete {
			channels = append(channels, Channel{ID: id, Frames: fs})
		}
	}
	return channels
}

// decompressChannel returns the decompressed channel, which must fit in maxRLPBytesPerChannel
func decompressChannel(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty channel")
	}
	var r io.Reader
	if data[0] == channelVersionBrotli {
		r = brotli.NewReader(bytes.NewReader(data[1:]))
	} else {
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("error opening zlib channel: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	// one byte over the cap tells a full channel from an oversized one
	out, err := io.ReadAll(io.LimitReader(r, maxRLPBytesPerChannel+1))
	if len(out) > maxRLPBytesPerChannel {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrChannelTooLarge, maxRLPBytesPerChannel)
	}
	if err != nil && len(out) == 0 {
		return nil, fmt.Errorf("error decompressing channel: %w", err)
	}
	return out, nil
}

// singularBatch is the body of a version 0 batch
type singularBatch struct {
	ParentHash   common.Hash
	EpochNum     uint64
	EpochHash    common.Hash
	Timestamp    uint64
	Transactions [][]byte
}

// Batch is the part of a decoded batch the inclusion search looks at
type Batch struct {
	EpochNum  uint64
	Timestamp uint64
	TxHashes  []common.Hash
}

// DecodeChannel decompresses a channel and decodes its batches. A truncated channel yields the
// batches decoded before the truncation, a channel over the size cap is an error.
func DecodeChannel(data []byte) ([]Batch, error) {
	raw, err := decompressChannel(data)
	if err != nil {
		return nil, err
	}
	stream := rlp.NewStream(bytes.NewReader(raw), maxRLPBytesPerChannel)
	var batches []Batch
	for {
		raw, err := stream.Bytes()
		if errors.Is(err, io.EOF) {
			return batches, nil
		} else if err != nil {
			if len(batches) > 0 {
				return batches, nil
			}
			return nil, fmt.Errorf("error reading batch: %w", err)
		}
		batch, err := decodeBatch(raw)
		if errors.Is(err, errSpanBatch) {
			continue
		} else if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
}

func decodeBatch(raw []byte) (Batch, error) {
	if len(raw) == 0 {
		return Batch{}, fmt.Errorf("empty batch")
	}
	switch raw[0] {
	case singularBatchType:
	case spanBatchType:
		return Batch{}, errSpanBatch
	default:
		return Batch{}, fmt.Errorf("unknown batch type %d", raw[0])
	}
	var sb singularBatch
	if err := rlp.DecodeBytes(raw[1:], &sb); err != nil {
		return Batch{}, fmt.Errorf("error decoding batch: %w", err)
	}
	batch := Batch{
		EpochNum:  sb.EpochNum,
		Timestamp: sb.Timestamp,
		TxHashes:  make([]common.Hash, 0, len(sb.Transactions)),
	}
	for i, rawTx := range sb.Transactions {
		var tx types.Transaction
		if err := tx.UnmarshalBinary(rawTx); err != nil {
			return Batch{}, fmt.Errorf("error decoding tx %d of batch at %d: %w", i, sb.Timestamp, err)
		}
		batch.TxHashes = append(batch.TxHashes, tx.Hash())
	}
	return batch, nil
}
