package list

// DefaultBatchSize 命令行工具默认的批量大小
const DefaultBatchSize = 3

// DrainInBatches 每次移除最多 batchSize 个头节点，然后调用一次 onBatch，直到链表为空
// 链表清空后再额外调用一次 onBatch 以展示空状态
// onBatch 可以为 nil；onBatch 中不能修改链表
func DrainInBatches[T any](l *List[T], batchSize int, onBatch func(l *List[T])) error {
	if batchSize <= 0 {
		return BatchSizeErr
	}
	if onBatch == nil {
		onBatch = func(*List[T]) {}
	}

	for !l.Empty() {
		for i := 0; i < batchSize; i++ {
			if err := l.RemoveHead(); err != nil {
				break // 批次中途已经清空
			}
		}
		onBatch(l)
	}
	onBatch(l)
	return nil
}
