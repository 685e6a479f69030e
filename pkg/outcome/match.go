package outcome

// Match collapses o into a single value. Exactly one handler runs.
func Match[T, R any](o Outcome[T],
	onOk func(v T) R,
	onErr func(fault error) R) R {

	if o.fault != nil {
		return onErr(o.fault)
	}
	return onOk(o.value)
}

// Visit runs the handler for o's case. Nil handlers are skipped.
func (o Outcome[T]) Visit(onOk func(v T), onErr func(fault error)) {
	if o.fault != nil {
		if onErr != nil {
			onErr(o.fault)
		}
		return
	}

	if onOk != nil {
		onOk(o.value)
	}
}
