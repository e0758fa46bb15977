// Package cmdq encodes the 32-bit command words of the byte-queue control
// protocol a host uses to exchange configuration and status with the
// network endpoint carrying the neighbor cache. Each word is an opcode in
// the high half and a 16-bit argument in the low half, transmitted
// big-endian. Wide operations (memory access, FIFO drains) split their
// arguments across consecutive words, least significant half first.
package cmdq

import (
	"encoding/binary"
	"errors"
)

// WordSize is the encoded size of one command word in bytes.
const WordSize = 4

const (
	opReadStatus    = 0x8000 // plus status address
	opWriteRegister = 0x0020 // plus register address
	opReadRegister  = 0x8020 // plus register address
	opSendPulse     = 0x000b
	opMemReadCount  = 0x0010
	opMemAddrLSB    = 0x0011
	opMemAddrMSB    = 0x0012
	opMemDataLSB    = 0x0013
	opMemDataMSB    = 0x0014
	opFIFOCountLSB  = 0x0019
	opFIFOCountMSB  = 0x001a

	// wordMemReadInit kicks off a memory read after address and count
	// words have been latched.
	wordMemReadInit = 0x80140000
)

var errWordBoundary = errors.New("cmdq: buffer not a whole number of words")

// Word is one decoded 32-bit command word.
type Word uint32

// Opcode returns the high half of the word selecting the operation.
func (w Word) Opcode() uint16 { return uint16(w >> 16) }

// Arg returns the low half of the word carrying the operand.
func (w Word) Arg() uint16 { return uint16(w) }

func appendWord(dst []byte, opcode, arg uint16) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(opcode)<<16|uint32(arg))
}

// AppendReadStatus appends a status word read command.
func AppendReadStatus(dst []byte, addr uint16) []byte {
	return appendWord(dst, opReadStatus+addr, 0)
}

// AppendSendPulse appends a one-shot pulse command for the lines selected
// by mask.
func AppendSendPulse(dst []byte, mask uint16) []byte {
	return appendWord(dst, opSendPulse, mask)
}

// AppendWriteRegister appends a config register write command.
func AppendWriteRegister(dst []byte, addr, val uint16) []byte {
	return appendWord(dst, opWriteRegister+addr, val)
}

// AppendReadRegister appends a config register read-back command.
func AppendReadRegister(dst []byte, addr uint16) []byte {
	return appendWord(dst, opReadRegister+addr, 0)
}

// AppendWriteMemory appends the word sequence writing vals to consecutive
// memory locations starting at addr: address halves first, then data halves
// per value.
func AppendWriteMemory(dst []byte, addr uint32, vals []uint32) []byte {
	dst = appendWord(dst, opMemAddrLSB, uint16(addr))
	dst = appendWord(dst, opMemAddrMSB, uint16(addr>>16))
	for _, v := range vals {
		dst = appendWord(dst, opMemDataLSB, uint16(v))
		dst = appendWord(dst, opMemDataMSB, uint16(v>>16))
	}
	return dst
}

// AppendReadMemory appends the word sequence reading n words starting at
// addr: address halves, word count, then the read-initiate word.
func AppendReadMemory(dst []byte, addr uint32, n uint16) []byte {
	dst = appendWord(dst, opMemAddrLSB, uint16(addr))
	dst = appendWord(dst, opMemAddrMSB, uint16(addr>>16))
	dst = appendWord(dst, opMemReadCount, n)
	return binary.BigEndian.AppendUint32(dst, wordMemReadInit)
}

// AppendReadDataFIFO appends the two-word command draining n words from the
// data FIFO, most significant count half first.
func AppendReadDataFIFO(dst []byte, n uint32) []byte {
	dst = appendWord(dst, opFIFOCountMSB, uint16(n>>16))
	return appendWord(dst, opFIFOCountLSB, uint16(n))
}

// ParseWords decodes a big-endian command stream into words. The buffer
// must hold a whole number of words.
func ParseWords(buf []byte) ([]Word, error) {
	if len(buf)%WordSize != 0 {
		return nil, errWordBoundary
	}
	words := make([]Word, len(buf)/WordSize)
	for i := range words {
		words[i] = Word(binary.BigEndian.Uint32(buf[i*WordSize:]))
	}
	return words, nil
}
