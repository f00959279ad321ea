package vm

// device looks up the device installed at id, applying the same
// two-step validation the reference machine does: an out-of-range slot
// number is a field error, an in-range but empty slot is an unknown
// device.
func (m *VM) device(id int) (IODevice, error) {
	if id < 0 || id >= NumDevices {
		return nil, m.fault(ErrInvalidField)
	}
	dev := m.Devices[id]
	if dev == nil {
		return nil, m.fault(ErrUnknownDevice)
	}
	return dev, nil
}

// opJbusJred implements JBUS and JRED: jump if the addressed device
// reports busy (JBUS) or ready (JRED).
func (m *VM) opJbusJred(instr Instruction) error {
	dev, err := m.device(int(instr.Field))
	if err != nil {
		return err
	}

	var shouldJump bool
	var ioErr error
	switch instr.Opcode {
	case OpJbus:
		shouldJump, ioErr = dev.IsBusy()
	case OpJred:
		shouldJump, ioErr = dev.IsReady()
	}
	if ioErr != nil {
		return m.fault(ErrIOError)
	}

	if shouldJump {
		target, err := m.effAddr(instr.Addr, instr.Index)
		if err != nil {
			return err
		}
		m.doJump(target, true)
	}
	return nil
}

// opIoc implements IOC: send a device-specific command word built from
// an unchecked effective address.
func (m *VM) opIoc(instr Instruction) error {
	command, err := m.effAddrUnchecked(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	dev, err := m.device(int(instr.Field))
	if err != nil {
		return err
	}
	if err := dev.Control(command); err != nil {
		return m.fault(ErrIOError)
	}
	return nil
}

// opInOut implements IN and OUT: transfer one device block to or from
// memory starting at the effective address, which must keep the whole
// block inside the address space.
func (m *VM) opInOut(instr Instruction) error {
	start, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	dev, err := m.device(int(instr.Field))
	if err != nil {
		return err
	}

	blockSize := dev.BlockSize()
	end := int(start) + blockSize
	if end > MemSize {
		return m.fault(ErrInvalidAddress)
	}

	var ioErr error
	switch instr.Opcode {
	case OpIn:
		ioErr = dev.Read(m.Mem[start:end])
	case OpOut:
		ioErr = dev.Write(m.Mem[start:end])
	}
	if ioErr != nil {
		return m.fault(ErrIOError)
	}
	return nil
}
