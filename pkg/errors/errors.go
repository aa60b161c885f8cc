package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// ErrConcurrentDelete 乐观锁冲突的特殊情形：记录已被其他操作删除
// 必须与普通冲突区分上报，前端提示语不同
var ErrConcurrentDelete = errors.New("数据已被其他用户删除")
